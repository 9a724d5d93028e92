package models

import "time"

// NewsItem is a trade news entry surfaced on the benefits page.
type NewsItem struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Category    string    `bson:"category" json:"category"`
	Sector      string    `bson:"sector" json:"sector"`
	Source      string    `bson:"source" json:"source"`
	SourceURL   string    `bson:"source_url" json:"sourceUrl"`
	IsFeatured  bool      `bson:"is_featured" json:"isFeatured"`
	PublishedAt time.Time `bson:"published_at" json:"publishedAt"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
