package config

import (
	"log"
	"sync"

	"github.com/google/go-cmp/cmp"
)

type KeyListener struct {
	Key      string
	Listener func(any)
}

var (
	listeners []KeyListener
	// listener values seen by the last update, viper may have already
	// reloaded the file by the time a change callback runs
	snapshot []any
	updateMu sync.Mutex
)

// RegisterKeyListener use in init method don't dynamic update
func RegisterKeyListener(l KeyListener) {
	listeners = append(listeners, l)
}

func takeSnapshot() {
	snapshot = make([]any, len(listeners))
	for i, l := range listeners {
		snapshot[i] = vp.Get(l.Key)
	}
}

// triggerUpdate applies update to the viper instance, refreshes GConfig and
// notifies the listeners whose key changed.
func triggerUpdate(update func() error) {
	updateMu.Lock()
	defer updateMu.Unlock()

	if len(snapshot) != len(listeners) {
		takeSnapshot()
	}

	if err := update(); err != nil {
		log.Printf("failed to dynamic update config file, %v\n", err)
		return
	}

	next := new(Config)
	if err := vp.Unmarshal(next); err != nil {
		log.Printf("failed to dynamic update config file, %v\n", err)
		return
	}
	if next.Server.Port != GConfig.Server.Port {
		log.Printf("%s changed, restart to take effect\n", ServerPortKey)
	}
	*GConfig = *next

	for i, l := range listeners {
		val := vp.Get(l.Key)
		if !cmp.Equal(val, snapshot[i]) && l.Listener != nil {
			l.Listener(val)
		}
		snapshot[i] = val
	}
}
