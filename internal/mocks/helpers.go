package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockSenderForTest creates a new mock Sender for testing
func NewMockSenderForTest(t *testing.T) *MockSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSender(ctrl)
}

// NewMockVerifierForTest creates a new mock Verifier for testing
func NewMockVerifierForTest(t *testing.T) *MockVerifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockVerifier(ctrl)
}

// NewMockEmailServiceForTest creates a new mock EmailService for testing
func NewMockEmailServiceForTest(t *testing.T) *MockEmailService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailService(ctrl)
}
