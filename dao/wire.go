//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewLedgerDAO,
	NewPostDAO,
	NewCommentDAO,
	NewQuestionDAO,
	NewAnswerDAO,
	NewUserDAO,
	NewReportDAO,
	NewAttachmentDAO,
)
