// Package rooms holds the curated room catalog.
package rooms

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gosimple/slug"

	"storyroom/config"
)

var ErrRoomNotFound = errors.New("room not found")

type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameOther   string `json:"nameOther,omitempty"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	Audio       string `json:"audioSrc,omitempty"`
}

// Catalog is immutable after construction.
type Catalog struct {
	rooms []Room
	byID  map[string]int
}

// New validates configured rooms: ids must be unique lower case slugs since
// they are matched against room markers in story files and used in URLs.
func New(list []config.RoomConfig) (*Catalog, error) {
	c := &Catalog{
		rooms: make([]Room, 0, len(list)),
		byID:  make(map[string]int, len(list)),
	}
	for _, rc := range list {
		id := strings.TrimSpace(rc.ID)
		if !slug.IsSlug(id) {
			return nil, fmt.Errorf("room id %q is not a valid slug", rc.ID)
		}
		if strings.ToLower(id) != id {
			return nil, fmt.Errorf("room id %q must be lower case", rc.ID)
		}
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("duplicate room id %q", id)
		}
		c.byID[id] = -1
		c.rooms = append(c.rooms, Room{
			ID:          id,
			Name:        rc.Name,
			NameOther:   rc.NameOther,
			Description: rc.Description,
			Order:       rc.Order,
			Audio:       strings.TrimSpace(rc.Audio),
		})
	}

	slices.SortStableFunc(c.rooms, func(a, b Room) int {
		return a.Order - b.Order
	})
	for i, r := range c.rooms {
		c.byID[r.ID] = i
	}
	return c, nil
}

// All returns rooms sorted by display order.
func (c *Catalog) All() []Room {
	return slices.Clone(c.rooms)
}

func (c *Catalog) Get(id string) (Room, error) {
	if i, ok := c.byID[id]; ok {
		return c.rooms[i], nil
	}
	return Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
}

// Has reports whether room exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// AudioSource returns ambient audio reference of the room, empty when room is
// unknown or has no audio of its own.
func (c *Catalog) AudioSource(id string) (string, bool) {
	i, ok := c.byID[id]
	if !ok || len(c.rooms[i].Audio) == 0 {
		return "", false
	}
	return c.rooms[i].Audio, true
}
