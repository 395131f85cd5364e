package mocks

import (
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/events"
	"github.com/indexdata/circbroker/model"
	"github.com/stretchr/testify/mock"
)

type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) SaveRequest(ctx common.ExtendedContext, env *model.RequestEnvelope, itemId int64, status string) (int64, error) {
	args := m.Called(env, itemId, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx common.ExtendedContext, topic string, response *model.ItemInformationResponse) error {
	args := m.Called(topic, response)
	return args.Error(0)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) WithTxFunc(ctx common.ExtendedContext, fn func(events.EventRepo) error) error {
	return fn(m)
}

func (m *MockEventRepo) SaveNotice(ctx common.ExtendedContext, topic string, payload string) (int64, error) {
	args := m.Called(topic, payload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepo) Notify(ctx common.ExtendedContext, channel string, payload string) error {
	args := m.Called(channel, payload)
	return args.Error(0)
}
