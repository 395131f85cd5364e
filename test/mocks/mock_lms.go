package mocks

import (
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/lms"
	"github.com/indexdata/circbroker/model"
	"github.com/stretchr/testify/mock"
)

type MockLmsRouter struct {
	mock.Mock
}

func (m *MockLmsRouter) GetAdapter(ctx common.ExtendedContext, institution string, family lms.ProtocolFamily) (lms.LmsAdapter, error) {
	args := m.Called(institution, family)
	a, _ := args.Get(0).(lms.LmsAdapter)
	return a, args.Error(1)
}

type MockLmsAdapter struct {
	mock.Mock
}

func (m *MockLmsAdapter) CheckOutItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckoutResponse, error) {
	args := m.Called(itemBarcode, patronBarcode)
	res, _ := args.Get(0).(*model.CheckoutResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) CheckInItem(ctx common.ExtendedContext, itemBarcode string, patronBarcode string) (*model.CheckinResponse, error) {
	args := m.Called(itemBarcode, patronBarcode)
	res, _ := args.Get(0).(*model.CheckinResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) PlaceHold(ctx common.ExtendedContext, params lms.HoldParams) (*model.HoldResponse, error) {
	args := m.Called(params)
	res, _ := args.Get(0).(*model.HoldResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) CancelHold(ctx common.ExtendedContext, params lms.HoldParams) (*model.HoldResponse, error) {
	args := m.Called(params)
	res, _ := args.Get(0).(*model.HoldResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) CreateBib(ctx common.ExtendedContext, itemBarcode string, patronBarcode string, institution string, title string) (*model.CreateBibResponse, error) {
	args := m.Called(itemBarcode, patronBarcode, institution, title)
	res, _ := args.Get(0).(*model.CreateBibResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) LookupItem(ctx common.ExtendedContext, itemBarcode string) (*model.ItemInformationResponse, error) {
	args := m.Called(itemBarcode)
	res, _ := args.Get(0).(*model.ItemInformationResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) RecallItem(ctx common.ExtendedContext, params lms.HoldParams) (*model.RecallResponse, error) {
	args := m.Called(params)
	res, _ := args.Get(0).(*model.RecallResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) LookupPatron(ctx common.ExtendedContext, patronBarcode string) (*model.PatronInformationResponse, error) {
	args := m.Called(patronBarcode)
	res, _ := args.Get(0).(*model.PatronInformationResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) RefileItem(ctx common.ExtendedContext, itemBarcode string) (*model.RefileResponse, error) {
	args := m.Called(itemBarcode)
	res, _ := args.Get(0).(*model.RefileResponse)
	return res, args.Error(1)
}

func (m *MockLmsAdapter) ValidatePatron(ctx common.ExtendedContext, institution string, patronBarcode string) (bool, error) {
	args := m.Called(institution, patronBarcode)
	return args.Bool(0), args.Error(1)
}
