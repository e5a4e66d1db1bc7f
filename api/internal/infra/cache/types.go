package cache

import "sync"

type Cache struct {
	Storage sync.Map
}
