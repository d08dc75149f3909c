package domain

import (
	"reflect"

	sharedEvents "github.com/davicafu/blogolab/internal/shared/events"
)

// Las constantes de los tipos de evento se definen aquí, como valores string.
const (
	PostCreated   = "post.created"
	PostUpdated   = "post.updated"
	PostWithdrawn = "post.withdrawn"
)

const PostTopic = "post"

func NewEventRegistry() map[string]sharedEvents.EventMetadata {
	return map[string]sharedEvents.EventMetadata{
		PostCreated: {
			Type:  reflect.TypeOf(Post{}),
			Topic: PostTopic,
		},
		PostUpdated: {
			Type:  reflect.TypeOf(Post{}),
			Topic: PostTopic,
		},
		PostWithdrawn: {
			Type:  reflect.TypeOf(Post{}),
			Topic: PostTopic,
		},
	}
}
