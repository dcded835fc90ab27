package server

import (
	"Plaza/handler"
)

type Handlers struct {
	Auth            *handler.Auth
	Post            *handler.Post
	CommentsHandler *handler.CommentsHandler
	Question        *handler.Question
	Answer          *handler.Answer
	Report          *handler.Report
	Upload          *handler.Upload
}
