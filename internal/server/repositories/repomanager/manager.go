package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/aroha/internal/dbx"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/diary"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/records"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/aroha/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or a *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Records(db dbx.DBTX) records.Repository
	Diary(db dbx.DBTX) diary.Repository
}
