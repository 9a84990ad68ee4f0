package repositories

import (
	"context"
	"fmt"
	"time"

	"verduleria/models"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) ListReviews(ctx context.Context, limit int) ([]models.Review, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, name, rating, comment, created_at FROM reviews ORDER BY id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.Name, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) error {
	return models.DB.QueryRow(ctx,
		`INSERT INTO reviews (name, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		review.Name, review.Rating, review.Comment, time.Now(),
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
