package news

import "context"

type Repository interface {
	ListArticles(context context.Context, publishedOnly bool, limit, offset int) ([]*Article, int, error)
	LatestArticles(context context.Context, limit int) ([]*Article, error)
	GetArticle(context context.Context, id string) (*Article, error)
	GetArticleBySlug(context context.Context, slug string, publishedOnly bool) (*Article, error)
	CreateArticle(context context.Context, a *Article) error
	UpdateArticle(context context.Context, id string, p *Patch) (*Article, error)
	DeleteArticle(context context.Context, id string) error
}
