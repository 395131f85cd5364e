package common

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ExtendedContext interface {
	context.Context
	// return logger associated with this context
	Logger() *slog.Logger
	// return log args this context was created with, never nil
	LoggerArgs() LoggerArgs
	// create new instance backed by the same context and log handler but with new log args
	WithArgs(args *LoggerArgs) ExtendedContext
}

var DefaultLogHandler slog.Handler = slog.NewTextHandler(os.Stdout, nil)

type LoggerArgs struct {
	RequestId   string
	Institution string
	Operation   string
	Component   string
	Other       map[string]string
}

// WithComponent returns a copy of the args with the component set.
func (a LoggerArgs) WithComponent(component string) *LoggerArgs {
	a.Component = component
	return &a
}

type _ExtCtxImpl struct {
	context.Context
	logger     *slog.Logger
	logHandler slog.Handler
	args       LoggerArgs
}

func (ctx *_ExtCtxImpl) Logger() *slog.Logger {
	return ctx.logger
}

func (ctx *_ExtCtxImpl) LoggerArgs() LoggerArgs {
	return ctx.args
}

func (ctx *_ExtCtxImpl) WithArgs(args *LoggerArgs) ExtendedContext {
	return CreateExtCtxWithLogArgsAndHandler(ctx.Context, args, ctx.logHandler)
}

func CreateExtCtxWithArgs(ctx context.Context, args *LoggerArgs) ExtendedContext {
	return CreateExtCtxWithLogArgsAndHandler(ctx, args, DefaultLogHandler)
}

func CreateExtCtxWithLogArgsAndHandler(ctx context.Context, args *LoggerArgs, logHandler slog.Handler) ExtendedContext {
	var extctx _ExtCtxImpl
	extctx.Context = ctx
	extctx.logHandler = logHandler
	if args != nil {
		extctx.args = *args
	}
	extctx.logger = createChildLoggerWithArgs(slog.New(logHandler), args)
	return &extctx
}

func createChildLoggerWithArgs(logger *slog.Logger, args *LoggerArgs) *slog.Logger {
	loggerWithArgs := logger.With("process", uuid.New().String())
	if args != nil {
		if args.RequestId != "" {
			loggerWithArgs = loggerWithArgs.With("requestId", args.RequestId)
		}
		if args.Institution != "" {
			loggerWithArgs = loggerWithArgs.With("institution", args.Institution)
		}
		if args.Operation != "" {
			loggerWithArgs = loggerWithArgs.With("operation", args.Operation)
		}
		if args.Component != "" {
			loggerWithArgs = loggerWithArgs.With("component", args.Component)
		}
		for k, v := range args.Other {
			loggerWithArgs = loggerWithArgs.With(k, v)
		}
	}
	return loggerWithArgs
}
