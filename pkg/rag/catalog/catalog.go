package catalog

import (
	"os"
	"strings"
	"time"

	"ai-course-assistant-be/internal/constant"
	"ai-course-assistant-be/internal/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
)

const cacheKey = "course_catalog"

// Catalog enumerates available course offerings from the content directory.
// Listings change rarely, so results are cached. A failed directory read is
// absorbed with a fixed fallback list; the catalog is cosmetic and must never
// fail an answer.
type Catalog struct {
	dataDir string
	cache   *gocache.Cache
	log     logger.ILogger
}

func NewCatalog(dataDir string, ttl time.Duration, log logger.ILogger) *Catalog {
	return &Catalog{
		dataDir: dataDir,
		cache:   gocache.New(ttl, 2*ttl),
		log:     log,
	}
}

func (c *Catalog) Courses() []string {
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]string)
	}

	entries, err := os.ReadDir(c.dataDir)
	if err != nil {
		c.log.Warn("catalog", "failed to list course directory, serving fallback", map[string]interface{}{
			"data_dir": c.dataDir,
			"error":    err.Error(),
		})
		return constant.FallbackCourses
	}

	courses := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if i := strings.Index(name, "."); i >= 0 {
			name = name[:i]
		}
		courses = append(courses, name)
	}

	c.cache.Set(cacheKey, courses, gocache.DefaultExpiration)
	return courses
}
