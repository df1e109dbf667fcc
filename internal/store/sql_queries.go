package store

import (
	"strings"

	"github.com/MKhiriev/go-user-posts/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, first_name, last_name, email, mobile, username, user_type, password, status, token, token_expires_at`
	postColumns = `id, title, description, is_published, status, user_id, created_at, updated_at`

	createUser = `INSERT INTO users (id, first_name, last_name, email, mobile, username, user_type, password, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + userColumns + `;`

	getUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	emailTaken = `SELECT EXISTS (
        SELECT 1 FROM users WHERE email = $1 AND id <> $2
    );`

	usernameTaken = `SELECT EXISTS (
        SELECT 1 FROM users WHERE username = $1 AND id <> $2
    );`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	setUserToken = `UPDATE users
    SET token = $2, token_expires_at = $3, updated_at = NOW()
    WHERE id = $1;`

	clearUserToken = `UPDATE users
    SET token = '', token_expires_at = NULL, updated_at = NOW()
    WHERE id = $1;`

	clearExpiredTokens = `UPDATE users
    SET token = '', token_expires_at = NULL, updated_at = NOW()
    WHERE token <> '' AND token_expires_at < $1;`

	createPost = `INSERT INTO posts (id, title, description, is_published, status, user_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + postColumns + `;`

	getPostByID = `SELECT ` + postColumns + `
    FROM posts
    WHERE id = $1;`

	titleTaken = `SELECT EXISTS (
        SELECT 1 FROM posts WHERE title = $1 AND id <> $2
    );`

	deletePost = `DELETE FROM posts
    WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into an ILIKE pattern that matches it
// literally anywhere in the column.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func anyColumnContains(search string, columns ...string) sq.Or {
	pattern := containsPattern(search)

	or := make(sq.Or, 0, len(columns))
	for _, column := range columns {
		or = append(or, sq.ILike{column: pattern})
	}
	return or
}

// buildListUsersQuery builds the SELECT of the user list endpoint. Every
// non-empty filter narrows the result.
func buildListUsersQuery(filter models.UserFilter) (string, []any, error) {
	query := psql.Select(userColumns).From("users")

	if filter.Search != "" {
		query = query.Where(anyColumnContains(filter.Search, "first_name", "last_name", "mobile", "email", "username"))
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.UserType != "" {
		query = query.Where(sq.Eq{"user_type": filter.UserType})
	}

	return query.OrderBy("created_at", "id").ToSql()
}

// buildListPostsQuery builds the SELECT of the post list endpoint.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	query := psql.Select(postColumns).From("posts")

	if filter.Search != "" {
		query = query.Where(anyColumnContains(filter.Search, "title", "description"))
	}
	if filter.IsPublished != "" {
		query = query.Where(sq.Eq{"is_published": filter.IsPublished})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.UserID != "" {
		query = query.Where(sq.Eq{"user_id": filter.UserID})
	}

	return query.OrderBy("created_at", "id").ToSql()
}

// buildUpdateUserQuery builds an UPDATE that sets only the fields present in
// update and returns the stored row. It fails with [ErrNothingToUpdate] when
// update is empty.
func buildUpdateUserQuery(id string, update models.UserPayload) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	query := psql.Update("users")
	query = setIfPresent(query, "first_name", update.FirstName)
	query = setIfPresent(query, "last_name", update.LastName)
	query = setIfPresent(query, "email", update.Email)
	query = setIfPresent(query, "mobile", update.Mobile)
	query = setIfPresent(query, "username", update.Username)
	query = setIfPresent(query, "user_type", update.UserType)
	query = setIfPresent(query, "password", update.Password)
	query = setIfPresent(query, "status", update.Status)

	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildUpdatePostQuery is the post counterpart of [buildUpdateUserQuery].
func buildUpdatePostQuery(id string, update models.PostPayload) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	query := psql.Update("posts")
	query = setIfPresent(query, "title", update.Title)
	query = setIfPresent(query, "description", update.Description)
	query = setIfPresent(query, "is_published", update.IsPublished)
	query = setIfPresent(query, "status", update.Status)
	query = setIfPresent(query, "user_id", update.UserID)

	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + postColumns).
		ToSql()
}

func setIfPresent(query sq.UpdateBuilder, column string, value *string) sq.UpdateBuilder {
	if value == nil {
		return query
	}
	return query.Set(column, *value)
}
