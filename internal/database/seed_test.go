package database

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	assert.NoError(t, SeedAdmin(nil, "", "whatever-password"))
	assert.NoError(t, SeedAdmin(nil, "admin@example.com", ""))
}

func TestSeedAdmin_ShortPassword(t *testing.T) {
	assert.Error(t, SeedAdmin(nil, "admin@example.com", "short"))
}

func TestModels_ParentsFirst(t *testing.T) {
	names := make([]string, 0)
	for _, m := range Models() {
		names = append(names, typeName(m))
	}
	assert.Less(t, indexOf(names, "User"), indexOf(names, "Participation"))
	assert.Less(t, indexOf(names, "Event"), indexOf(names, "ScheduledNotification"))
	assert.Less(t, indexOf(names, "Location"), indexOf(names, "Stand"))
}

func typeName(v interface{}) string {
	return reflect.TypeOf(v).Elem().Name()
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
