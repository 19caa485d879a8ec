package identities

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/authgate/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+identities\s*\(id,\s*username,\s*password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(now)
	mock.ExpectQuery(q).
		WithArgs("42", "alice", "pw").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &Identity{ID: "42", Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "42" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestCreate_MintsUUID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+identities`

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "bob", "pw").
		WillReturnRows(rows)

	got, err := repo.Create(context.Background(), &Identity{Username: "bob", Password: "pw"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id, got empty")
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+identities`

	mock.ExpectQuery(q).
		WithArgs("1", "alice", "pw").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &Identity{ID: "1", Username: "alice", Password: "pw"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByUsername_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*password,\s*created_at\s+FROM\s+identities\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "password", "created_at"}).
		AddRow("1", "sukkergris", "troika", time.Now())
	mock.ExpectQuery(q).WithArgs("sukkergris").WillReturnRows(rows)

	got, err := repo.FindByUsername(context.Background(), "sukkergris")
	if err != nil {
		t.Fatalf("FindByUsername error: %v", err)
	}
	if got.ID != "1" || got.Password != "troika" {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestFindByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+id,`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "nope")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*password,\s*created_at\s+FROM\s+identities\s+ORDER\s+BY\s+created_at\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "password", "created_at"}).
		AddRow("1", "sukkergris", "troika", time.Now()).
		AddRow("2", "Robby Newby", "", time.Now())
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[1].Username != "Robby Newby" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
