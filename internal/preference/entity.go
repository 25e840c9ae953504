package preference

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ArtistCount is one per-artist play counter inside a user's preference
// document. UpdatedAt breaks ties when trimming to the top 5: on equal
// counts the more recently updated artist wins.
type ArtistCount struct {
	Name      string    `bson:"name" json:"name"`
	Count     int       `bson:"count" json:"count"`
	UpdatedAt time.Time `bson:"updatedAt" json:"-"`
}

// Preference is the single document kept per user email. The artists array
// is capped at the top 5 by count after every update.
type Preference struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Email     string        `bson:"email" json:"email"`
	Artists   []ArtistCount `bson:"artists" json:"artists"`
	CreatedAt int64         `bson:"createdAt" json:"-"`
	UpdatedAt int64         `bson:"updatedAt" json:"-"`
}
