package events

import (
	"errors"
	"strings"
	"time"

	"github.com/indexdata/circbroker/common"
	"github.com/jackc/pgx/v5"
)

const maxReconnectAttempts = 5

// PostgresListener receives notices published on a set of topics and hands them to a handler.
type PostgresListener struct {
	ConnectionString string
	topics           []string
	handler          func(ctx common.ExtendedContext, n Notification)
}

func NewPostgresListener(connString string, topics []string, handler func(ctx common.ExtendedContext, n Notification)) *PostgresListener {
	return &PostgresListener{
		ConnectionString: connString,
		topics:           topics,
		handler:          handler,
	}
}

// Start connects and listens in the background until ctx is cancelled. It returns once the
// first LISTEN succeeded.
func (l *PostgresListener) Start(ctx common.ExtendedContext) error {
	if len(l.topics) == 0 {
		return errors.New("no topics to listen to")
	}
	ctx = ctx.WithArgs(ctx.LoggerArgs().WithComponent("listener"))
	var conn *pgx.Conn
	var err error

	connectAndListen := func() error {
		conn, err = pgx.Connect(ctx, l.ConnectionString)
		if err != nil {
			ctx.Logger().Error("listener unable to connect to database", "error", err)
			return err
		}
		for _, topic := range l.topics {
			_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{topic}.Sanitize())
			if err != nil {
				ctx.Logger().Error("listener unable to listen to channel", "channel", topic, "error", err)
				return err
			}
		}
		ctx.Logger().Info("listening to channels", "channels", l.topics)
		return nil
	}

	if err = connectAndListen(); err != nil {
		return err
	}

	go func() {
		defer func() {
			_ = conn.Close(ctx)
		}()
		for {
			notification, er := conn.WaitForNotification(ctx)
			if er != nil {
				if ctx.Err() != nil || strings.Contains(er.Error(), "context canceled") {
					ctx.Logger().Info("context cancelled, stop listening")
					return
				}
				ctx.Logger().Error("unable to receive notification", "error", er)
				if conn.IsClosed() {
					ctx.Logger().Info("connection closed, attempting to reconnect")
					reconnected := false
					for attempt := 1; attempt <= maxReconnectAttempts; attempt++ {
						time.Sleep(time.Duration(attempt) * time.Second)
						if err = connectAndListen(); err == nil {
							reconnected = true
							break
						}
						ctx.Logger().Error("reconnection attempt failed", "error", err, "attempt", attempt)
					}
					if !reconnected {
						ctx.Logger().Error("max reconnection attempts reached, stop listening")
						return
					}
				}
				continue
			}
			var notice Notice
			if err := json.Unmarshal([]byte(notification.Payload), &notice); err != nil {
				ctx.Logger().Error("failed to decode notification", "channel", notification.Channel, "error", err)
				continue
			}
			l.handler(ctx, Notification{Channel: notification.Channel, Notice: notice})
		}
	}()
	return nil
}
