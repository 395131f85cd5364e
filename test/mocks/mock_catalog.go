package mocks

import (
	"github.com/indexdata/circbroker/catalog"
	"github.com/indexdata/circbroker/common"
	"github.com/stretchr/testify/mock"
)

type MockCatalogLookup struct {
	mock.Mock
}

func (m *MockCatalogLookup) FindByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]catalog.Item, error) {
	args := m.Called(barcodes)
	items, _ := args.Get(0).([]catalog.Item)
	return items, args.Error(1)
}

func (m *MockCatalogLookup) ItemStatus(ctx common.ExtendedContext, statusId int32) (string, error) {
	args := m.Called(statusId)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogLookup) FindByCode(ctx common.ExtendedContext, code string) (*catalog.CustomerCode, error) {
	args := m.Called(code)
	cc, _ := args.Get(0).(*catalog.CustomerCode)
	return cc, args.Error(1)
}

type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) FindItemsByBarcodes(ctx common.ExtendedContext, barcodes []string) ([]catalog.Item, error) {
	args := m.Called(barcodes)
	items, _ := args.Get(0).([]catalog.Item)
	return items, args.Error(1)
}

func (m *MockCatalogRepo) GetItemStatusCode(ctx common.ExtendedContext, statusId int32) (string, error) {
	args := m.Called(statusId)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogRepo) GetCustomerCode(ctx common.ExtendedContext, code string) (*catalog.CustomerCode, error) {
	args := m.Called(code)
	cc, _ := args.Get(0).(*catalog.CustomerCode)
	return cc, args.Error(1)
}

func (m *MockCatalogRepo) SaveRequestItem(ctx common.ExtendedContext, request catalog.RequestItem) (int64, error) {
	args := m.Called(request)
	return args.Get(0).(int64), args.Error(1)
}
