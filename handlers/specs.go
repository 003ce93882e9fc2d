package handlers

import (
	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/types"
)

// Per-resource query capabilities. Fields outside these sets are ignored
// by the filter engine rather than rejected.
var (
	serviceSpec = query.Spec{
		Filterable:   []string{"name"},
		Searchable:   []string{"name", "description"},
		Orderable:    []string{"created_at", "name"},
		DefaultOrder: "-created_at",
	}

	projectSpec = query.Spec{
		Filterable:   []string{"category", "client"},
		Searchable:   []string{"name", "description", "category", "client"},
		Orderable:    []string{"completion_date", "created_at", "name"},
		DefaultOrder: "-completion_date",
	}

	articleSpec = query.Spec{
		Filterable:   []string{"category", "author"},
		Searchable:   []string{"title", "description", "author", "category"},
		Orderable:    []string{"publish_date", "created_at", "title"},
		DefaultOrder: "-publish_date",
	}

	eventSpec = query.Spec{
		Filterable:   []string{"event_type", "location"},
		Searchable:   []string{"title", "description", "location"},
		Orderable:    []string{"date", "created_at", "title"},
		DefaultOrder: "-date",
	}

	gallerySpec = query.Spec{
		Filterable:   []string{"category"},
		Searchable:   []string{"filename", "description", "category"},
		Orderable:    []string{"upload_date", "created_at", "filename"},
		DefaultOrder: "-upload_date",
	}

	feedbackSpec = query.Spec{
		Filterable:   []string{"approved", "rating"},
		Searchable:   []string{"name", "company", "review"},
		Orderable:    []string{"created_at", "rating"},
		DefaultOrder: "-created_at",
	}

	contactSpec = query.Spec{
		Filterable:   []string{"country", "company"},
		Searchable:   []string{"full_name", "email", "company", "job_details"},
		Orderable:    []string{"created_at", "full_name"},
		DefaultOrder: "-created_at",
	}
)

func NewServiceHandler(s store.ResourceStore[*types.Service]) *ResourceHandler[*types.Service] {
	return &ResourceHandler[*types.Service]{
		store:     s,
		policy:    types.PolicyFor(types.ResourceService),
		spec:      serviceSpec,
		newEntity: func() *types.Service { return &types.Service{} },
	}
}

func NewProjectHandler(s store.ResourceStore[*types.Project]) *ResourceHandler[*types.Project] {
	return &ResourceHandler[*types.Project]{
		store:     s,
		policy:    types.PolicyFor(types.ResourceProject),
		spec:      projectSpec,
		newEntity: func() *types.Project { return &types.Project{} },
	}
}

func NewArticleHandler(s store.ResourceStore[*types.Article]) *ResourceHandler[*types.Article] {
	return &ResourceHandler[*types.Article]{
		store:     s,
		policy:    types.PolicyFor(types.ResourceArticle),
		spec:      articleSpec,
		newEntity: func() *types.Article { return &types.Article{} },
	}
}

func NewEventHandler(s store.ResourceStore[*types.Event]) *ResourceHandler[*types.Event] {
	return &ResourceHandler[*types.Event]{
		store:     s,
		policy:    types.PolicyFor(types.ResourceEvent),
		spec:      eventSpec,
		newEntity: func() *types.Event { return &types.Event{} },
	}
}

func NewGalleryHandler(s store.ResourceStore[*types.GalleryItem]) *ResourceHandler[*types.GalleryItem] {
	return &ResourceHandler[*types.GalleryItem]{
		store:     s,
		policy:    types.PolicyFor(types.ResourceGallery),
		spec:      gallerySpec,
		newEntity: func() *types.GalleryItem { return &types.GalleryItem{} },
	}
}
