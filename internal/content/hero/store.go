package hero

import "context"

type Repository interface {
	ListSlides(context context.Context, activeOnly bool) ([]*Slide, error)
	GetSlide(context context.Context, id string) (*Slide, error)
	CreateSlide(context context.Context, s *Slide) error
	UpdateSlide(context context.Context, s *Slide) error
	DeleteSlide(context context.Context, id string) error
}
