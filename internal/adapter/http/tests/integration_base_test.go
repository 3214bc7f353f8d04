//go:build integration

package tests

import (
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"todoboard/internal/adapter/db/testhelper"
)

type IntegrationSuiteBase struct {
	suite.Suite

	DB *sqlx.DB
}

// ResetDatabase hands every test a migrated database with an empty todos table.
func (s *IntegrationSuiteBase) ResetDatabase() {
	s.DB = testhelper.SetupTestDB(s.T())
}
