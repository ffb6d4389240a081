package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type LogData struct {
	itemsMutex *sync.Mutex
	timeItems  map[string]int64
	dataItems  map[string]interface{}
	logger     *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		itemsMutex: &sync.Mutex{},
		timeItems:  make(map[string]int64),
		dataItems:  make(map[string]interface{}),
		logger:     logger,
	}
}

func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.itemsMutex.Lock()
		defer l.itemsMutex.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.itemsMutex.Lock()
	defer l.itemsMutex.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	entry := logrus.NewEntry(l.logger)

	l.itemsMutex.Lock()
	defer l.itemsMutex.Unlock()

	for key, value := range l.dataItems {
		entry = entry.WithField(key, value)
	}

	for key, value := range l.timeItems {
		entry = entry.WithField(key, value)
	}

	return entry
}
