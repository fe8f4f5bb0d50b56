package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-posts/models"
)

const (
	createUser = `INSERT INTO users (email, password)
    VALUES ($1, $2)
    RETURNING id, email, password, created_at;`

	findUserByEmail = `SELECT id, email, password, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password, created_at
    FROM users
    WHERE id = $1;`

	createPost = `INSERT INTO posts (title, content, published, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING id;`

	selectPostOwnerForUpdate = `SELECT owner_id
    FROM posts
    WHERE id = $1
    FOR UPDATE;`

	updatePost = `UPDATE posts
    SET title = $1, content = $2, published = $3
    WHERE id = $4;`

	deletePost = `DELETE FROM posts
    WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// postsSelect selects posts joined with the owner and the vote count. The
// column order matches scanPost.
func postsSelect() sq.SelectBuilder {
	return psql.
		Select(
			"p.id",
			"p.title",
			"p.content",
			"p.published",
			"p.created_at",
			"p.owner_id",
			"u.id",
			"u.email",
			"u.created_at",
			"COUNT(v.post_id) AS votes",
		).
		From("posts p").
		Join("users u ON u.id = p.owner_id").
		LeftJoin("votes v ON v.post_id = p.id").
		GroupBy("p.id", "u.id")
}

// buildListPostsQuery builds one page of the post listing. Search is a
// case-insensitive substring match on the title with LIKE wildcards escaped.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := postsSelect()
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"p.title": "%" + likeEscaper.Replace(filter.Search) + "%"})
	}

	return builder.
		OrderBy("p.id ASC").
		Limit(filter.Limit).
		Offset(filter.Skip).
		ToSql()
}

func buildGetPostQuery(postID int64) (string, []any, error) {
	return postsSelect().
		Where(sq.Eq{"p.id": postID}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Published,
		&post.CreatedAt,
		&post.OwnerID,
		&post.Owner.UserID,
		&post.Owner.Email,
		&post.Owner.CreatedAt,
		&post.Votes,
	)

	return post, err
}
