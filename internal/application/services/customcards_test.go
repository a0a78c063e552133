package services_test

import (
	"context"
	"testing"

	"github.com/kofiasare/playtill/internal/application/services"
	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/suite"
)

type CustomCardServiceTestSuite struct {
	suite.Suite
	service *services.CustomCardService
}

func TestCustomCardServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomCardServiceTestSuite))
}

func (s *CustomCardServiceTestSuite) SetupTest() {
	s.service = services.NewCustomCardService(memory.NewCustomCardRepository(), testLogger())
}

func (s *CustomCardServiceTestSuite) Test_Register_ThenValidate() {
	ctx := context.Background()

	s.Require().NoError(s.service.Register(ctx, "Red Card", "tok-abc"))

	identifier, err := s.service.Validate(ctx, "tok-abc")
	s.Require().NoError(err)
	s.Equal("Red Card", identifier)
}

func (s *CustomCardServiceTestSuite) Test_Register_DuplicateIdentifier() {
	ctx := context.Background()

	s.Require().NoError(s.service.Register(ctx, "Red Card", "tok-abc"))

	err := s.service.Register(ctx, "Red Card", "tok-other")
	s.True(domain.IsErrorCode(err, domain.ErrCodeAlreadyExists))
}

func (s *CustomCardServiceTestSuite) Test_Register_DuplicateToken() {
	ctx := context.Background()

	s.Require().NoError(s.service.Register(ctx, "Red Card", "tok-abc"))

	err := s.service.Register(ctx, "Blue Card", "tok-abc")
	s.True(domain.IsErrorCode(err, domain.ErrCodeAlreadyExists))

	// tok-abc still resolves to its original owner
	identifier, err := s.service.Validate(ctx, "tok-abc")
	s.Require().NoError(err)
	s.Equal("Red Card", identifier)
}

func (s *CustomCardServiceTestSuite) Test_Register_RejectsEmptyFields() {
	ctx := context.Background()

	s.True(domain.IsErrorCode(s.service.Register(ctx, "", "tok-abc"), domain.ErrCodeValidation))
	s.True(domain.IsErrorCode(s.service.Register(ctx, "Red Card", ""), domain.ErrCodeValidation))
}

func (s *CustomCardServiceTestSuite) Test_Validate_UnknownToken() {
	ctx := context.Background()
	s.Require().NoError(s.service.Register(ctx, "Red Card", "tok-abc"))

	_, err := s.service.Validate(ctx, "tok-xyz")
	s.True(domain.IsErrorCode(err, domain.ErrCodeInvalidToken))
}

func (s *CustomCardServiceTestSuite) Test_Validate_EmptyToken() {
	_, err := s.service.Validate(context.Background(), "")
	s.True(domain.IsErrorCode(err, domain.ErrCodeInvalidToken))
}
