package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(CommentsService), "*"),
	wire.Bind(new(ICommentsService), new(*CommentsService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),

	wire.Struct(new(ViewService), "*"),
	wire.Bind(new(IViewService), new(*ViewService)),

	wire.Struct(new(QuestionService), "*"),
	wire.Bind(new(IQuestionService), new(*QuestionService)),

	wire.Struct(new(AnswerService), "*"),
	wire.Bind(new(IAnswerService), new(*AnswerService)),

	wire.Struct(new(ReportService), "*"),
	wire.Bind(new(IReportService), new(*ReportService)),

	NewUploadService,
)
