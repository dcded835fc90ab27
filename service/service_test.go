package service

import (
	"testing"
	"time"

	"Plaza/dao"
	"Plaza/models"
	"Plaza/pkg/snowflake"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库按连接隔离，多连接会各看各的库
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Users{},
		&models.Post{},
		&models.Comment{},
		&models.Question{},
		&models.Answer{},
		&models.PostLike{},
		&models.CommentLike{},
		&models.Bookmark{},
		&models.QuestionVote{},
		&models.AnswerVote{},
		&models.ViewRecord{},
		&models.Report{},
		&models.Attachment{},
	))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, userID uint64) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:      uint64(snowflake.GenID()),
		UserID:  userID,
		Title:   "测试帖子",
		Content: "正文",
		Status:  models.StatusNormal,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedQuestion(t *testing.T, db *gorm.DB, userID uint64) *models.Question {
	t.Helper()
	question := &models.Question{
		ID:             uint64(snowflake.GenID()),
		UserID:         userID,
		Title:          "测试问题",
		QuestionStatus: models.QuestionOpen,
		Status:         models.StatusNormal,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func seedAnswer(t *testing.T, db *gorm.DB, questionID, userID uint64) *models.Answer {
	t.Helper()
	answer := &models.Answer{
		ID:         uint64(snowflake.GenID()),
		QuestionID: questionID,
		UserID:     userID,
		Content:    "测试回答",
		Status:     models.StatusNormal,
	}
	require.NoError(t, db.Create(answer).Error)
	// answer_count 与表内回答保持一致
	require.NoError(t, db.Model(&models.Question{}).
		Where("id = ?", questionID).
		UpdateColumn("answer_count", gorm.Expr("answer_count + 1")).Error)
	return answer
}

func seedComment(t *testing.T, db *gorm.DB, postID, userID, parentID uint64) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		ID:       uint64(snowflake.GenID()),
		PostID:   postID,
		UserID:   userID,
		ParentID: parentID,
		Content:  "测试评论",
		Status:   models.StatusNormal,
	}
	require.NoError(t, db.Create(comment).Error)
	require.NoError(t, db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error)
	return comment
}

func reloadPost(t *testing.T, db *gorm.DB, id uint64) *models.Post {
	t.Helper()
	var post models.Post
	require.NoError(t, db.First(&post, "id = ?", id).Error)
	return &post
}

func reloadQuestion(t *testing.T, db *gorm.DB, id uint64) *models.Question {
	t.Helper()
	var question models.Question
	require.NoError(t, db.First(&question, "id = ?", id).Error)
	return &question
}

func reloadAnswer(t *testing.T, db *gorm.DB, id uint64) *models.Answer {
	t.Helper()
	var answer models.Answer
	require.NoError(t, db.First(&answer, "id = ?", id).Error)
	return &answer
}

func reloadComment(t *testing.T, db *gorm.DB, id uint64) *models.Comment {
	t.Helper()
	var comment models.Comment
	require.NoError(t, db.First(&comment, "id = ?", id).Error)
	return &comment
}

func newLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		DB:         db,
		PostDAO:    dao.NewPostDAO(db),
		CommentDAO: dao.NewCommentDAO(db),
		LedgerDAO:  dao.NewLedgerDAO(db),
	}
}

func newVoteService(db *gorm.DB) *VoteService {
	return &VoteService{
		DB:          db,
		QuestionDAO: dao.NewQuestionDAO(db),
		AnswerDAO:   dao.NewAnswerDAO(db),
		LedgerDAO:   dao.NewLedgerDAO(db),
	}
}

func newBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{
		DB:        db,
		PostDAO:   dao.NewPostDAO(db),
		LedgerDAO: dao.NewLedgerDAO(db),
	}
}

func newCommentsService(db *gorm.DB) *CommentsService {
	return &CommentsService{
		DB:         db,
		PostDAO:    dao.NewPostDAO(db),
		CommentDAO: dao.NewCommentDAO(db),
		LedgerDAO:  dao.NewLedgerDAO(db),
	}
}

func newViewService(db *gorm.DB) *ViewService {
	return &ViewService{
		DB:        db,
		PostDAO:   dao.NewPostDAO(db),
		LedgerDAO: dao.NewLedgerDAO(db),
	}
}

func newQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{
		DB:          db,
		QuestionDAO: dao.NewQuestionDAO(db),
		AnswerDAO:   dao.NewAnswerDAO(db),
		LedgerDAO:   dao.NewLedgerDAO(db),
	}
}

func newAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{
		DB:          db,
		QuestionDAO: dao.NewQuestionDAO(db),
		AnswerDAO:   dao.NewAnswerDAO(db),
	}
}

func backdateViewRecord(t *testing.T, db *gorm.DB, postID uint64, userID *uint64, ip string, age time.Duration) {
	t.Helper()
	values := map[string]any{
		"post_id":    postID,
		"ip_address": ip,
		"created_at": time.Now().Add(-age),
	}
	if userID != nil {
		values["user_id"] = *userID
	}
	require.NoError(t, db.Table("view_records").Create(values).Error)
}
