//go:build wireinject
// +build wireinject

package main

import (
	"Plaza/config"
	"Plaza/dao"
	"Plaza/handler"
	"Plaza/pkg/client"
	"Plaza/pkg/database"
	"Plaza/pkg/server"
	"Plaza/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.Question), "*"),
		wire.Struct(new(handler.Answer), "*"),
		wire.Struct(new(handler.Report), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
