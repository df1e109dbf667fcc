package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-posts/internal/logger"
	"github.com/MKhiriev/go-user-posts/internal/utils"
	"github.com/MKhiriev/go-user-posts/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.IDGenerator
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewIDGenerator(),
	}
}

// CreatePost assigns a new identifier to post, persists it and returns the
// stored row including its timestamps. A duplicate title is reported as
// [ErrTitleAlreadyExists].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.ID = r.ids.Generate()

	var created models.Post
	err := r.db.withRetry(ctx, func() (err error) {
		row := r.db.QueryRowContext(ctx, createPost,
			post.ID, post.Title, post.Description, post.IsPublished, post.Status, post.UserID)
		created, err = scanPost(row)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, mapWriteError(err)
	}

	return created, nil
}

func (r *postRepository) GetPostByID(ctx context.Context, id string) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	err := r.db.withRetry(ctx, func() (err error) {
		post, err = scanPost(r.db.QueryRowContext(ctx, getPostByID, id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostByID").Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var posts []models.Post
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		posts = make([]models.Post, 0)
		for rows.Next() {
			post, err := scanPost(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			posts = append(posts, post)
		}
		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, id string, update models.PostPayload) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(id, update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.Post{}, err
		}
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Post
	err = r.db.withRetry(ctx, func() (err error) {
		updated, err = scanPost(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, mapWriteError(err)
	}

	return updated, nil
}

func (r *postRepository) DeletePost(ctx context.Context, id string) error {
	affected, err := r.db.exec(ctx, "*postRepository.DeletePost", deletePost, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) TitleTaken(ctx context.Context, title, excludeID string) (bool, error) {
	return r.db.exists(ctx, "*postRepository.TitleTaken", titleTaken, title, excludeID)
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.IsPublished,
		&post.Status,
		&post.UserID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}
