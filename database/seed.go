package database

import (
	"fmt"

	"github.com/rpupo63/blog-content-api/models"
	"gorm.io/gorm"
)

type seedPost struct {
	title     string
	content   string
	author    string
	tags      []string
	published bool
	featured  bool
}

var samplePosts = []seedPost{
	{
		title:     "Getting Started with Camera AI Technology",
		content:   "Camera AI technology is revolutionizing how we process and understand visual data. From security systems to autonomous vehicles, this technology combines advanced machine learning algorithms with real-time image processing to create intelligent systems that can see and understand the world around them. In this comprehensive guide, we'll explore the fundamentals of camera AI, its applications, and how to get started with implementing these powerful technologies in your projects.",
		author:    "Tech Team",
		tags:      []string{"ai", "computer-vision", "introduction", "technology"},
		published: true,
		featured:  true,
	},
	{
		title:     "Understanding Object Detection Algorithms",
		content:   "Object detection is a fundamental task in computer vision that involves identifying and locating objects within images or video streams. Modern object detection algorithms like YOLO (You Only Look Once) and R-CNN (Region-based CNN) have achieved remarkable accuracy and speed. These algorithms work by analyzing image features and using neural networks to classify and locate objects with bounding boxes. In this article, we'll dive deep into how these algorithms work, their strengths and weaknesses, and practical implementation considerations.",
		author:    "AI Research Team",
		tags:      []string{"object-detection", "yolo", "machine-learning", "algorithms"},
		published: true,
	},
	{
		title:     "Real-time Video Processing Techniques",
		content:   "Processing video in real-time presents unique challenges that require optimized algorithms and efficient hardware utilization. This comprehensive guide covers key techniques for real-time video processing including frame buffering, parallel processing, and GPU acceleration. We'll also discuss trade-offs between processing speed and accuracy, and when to use different optimization strategies. Learn how to build systems that can handle high-resolution video streams while maintaining low latency and high throughput.",
		author:    "Engineering Team",
		tags:      []string{"video-processing", "real-time", "optimization", "performance"},
		published: true,
	},
	{
		title:   "Machine Learning Models for Image Classification",
		content: "Image classification is one of the most common applications of machine learning in computer vision. This article explores various neural network architectures including CNNs, ResNet, and Vision Transformers. We'll cover data preprocessing, model training, and deployment strategies. Whether you're working on medical imaging, autonomous vehicles, or general image recognition, understanding these fundamental concepts is crucial for building effective AI systems.",
		author:  "Data Science Team",
		tags:    []string{"machine-learning", "image-classification", "neural-networks", "cnn"},
	},
	{
		title:     "Edge AI: Bringing Intelligence to the Edge",
		content:   "Edge AI represents a paradigm shift in how we deploy artificial intelligence, bringing computation closer to data sources. This approach reduces latency, improves privacy, and enables real-time decision making in resource-constrained environments. Learn about edge computing hardware, model optimization techniques like quantization and pruning, and best practices for deploying AI models on edge devices.",
		author:    "IoT Team",
		tags:      []string{"edge-ai", "iot", "optimization", "deployment"},
		published: true,
		featured:  true,
	},
}

// Seed wipes the collection and inserts the sample posts. Intended for local
// development only, behind the SEED_DB flag.
func Seed(db *gorm.DB) error {
	if err := db.Exec("DELETE FROM blogs").Error; err != nil {
		return fmt.Errorf("failed to clear blogs: %w", err)
	}

	for _, post := range samplePosts {
		blog := models.Blog{
			Title:     post.title,
			Content:   post.content,
			Author:    post.author,
			Published: post.published,
			Featured:  post.featured,
			Slug:      models.DeriveSlug(post.title),
		}
		for i, tag := range models.NormalizeTags(post.tags) {
			blog.Tags = append(blog.Tags, models.BlogTag{Value: tag, Position: i})
		}
		if err := db.Create(&blog).Error; err != nil {
			return fmt.Errorf("failed to seed %q: %w", post.title, err)
		}
	}

	return nil
}
