package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/blog-platform/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const namespaceBlog = "blog"

func New(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcService := NewBlogService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register(namespaceBlog, rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-platform", nil))

	return rpcServer
}
