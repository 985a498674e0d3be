package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

func New(logger *slog.Logger, manager *siteadmin.Manager) *zenrpc.Server {

	rpcService := NewContentService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("content", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "site-admin", nil))

	return rpcServer
}
