package cache

import (
	"fmt"

	"platina/services/content/internal/entity"
)

const (
	slugKey = "platina:%s:slug:%s" // <kind>:<slug>
	idKey   = "platina:%s:id:%s"   // <kind>:<id>

	authorPostsKey = "platina:author:%s:posts" // set of post keys embedding the author
)

func SlugKey(kind entity.PostType, slug string) string {
	return fmt.Sprintf(slugKey, kind, slug)
}

func IDKey(kind entity.PostType, id string) string {
	return fmt.Sprintf(idKey, kind, id)
}

func AuthorPostsKey(authorID string) string {
	return fmt.Sprintf(authorPostsKey, authorID)
}
