package memory

import (
	"sort"

	"github.com/patrickmn/go-cache"

	"ai-policyintel-be/internal/entity"
)

// DocumentRepository tracks ingested documents for listing and summaries.
// Keyed by file name; re-uploading a file replaces its registry entry.
// Entries never expire, they live until Clear or process restart.
type DocumentRepository struct {
	cache *cache.Cache
}

func NewDocumentRepository() *DocumentRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &DocumentRepository{
		cache: c,
	}
}

func (r *DocumentRepository) Register(doc *entity.Document) {
	r.cache.Set(doc.FileName, doc, cache.NoExpiration)
}

func (r *DocumentRepository) Get(fileName string) (*entity.Document, bool) {
	if x, found := r.cache.Get(fileName); found {
		return x.(*entity.Document), true
	}
	return nil, false
}

// List returns all registered documents, most recently uploaded first.
func (r *DocumentRepository) List() []*entity.Document {
	items := r.cache.Items()
	docs := make([]*entity.Document, 0, len(items))
	for _, item := range items {
		docs = append(docs, item.Object.(*entity.Document))
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadTime.After(docs[j].UploadTime)
	})
	return docs
}

func (r *DocumentRepository) SetSummary(fileName string, summary string) bool {
	doc, found := r.Get(fileName)
	if !found {
		return false
	}
	doc.Summary = summary
	r.cache.Set(fileName, doc, cache.NoExpiration)
	return true
}

func (r *DocumentRepository) Clear() {
	r.cache.Flush()
}

func (r *DocumentRepository) Count() int {
	return r.cache.ItemCount()
}
