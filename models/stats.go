package models

import "time"

// BlogStats is the aggregate report served by GET /blogs/stats.
type BlogStats struct {
	Counts      BlogCounts   `json:"counts"`
	TopViewed   []ViewedBlog `json:"topViewed"`
	TopLiked    []LikedBlog  `json:"topLiked"`
	Recent      []RecentBlog `json:"recent"`
	PopularTags []TagCount   `json:"popularTags"`
}

type BlogCounts struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Featured  int64 `json:"featured"`
}

type ViewedBlog struct {
	Title string `json:"title"`
	Views int64  `json:"views"`
	Slug  string `json:"slug"`
}

type LikedBlog struct {
	Title string `json:"title"`
	Likes int64  `json:"likes"`
	Slug  string `json:"slug"`
}

type RecentBlog struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Slug      string    `json:"slug"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}
