package activity

import "github.com/stretchr/testify/mock"

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Record(operation, details string) {
	m.Called(operation, details)
}
