package constants

// NSQ topics and channels
const (
	// Match Service
	TopicMatchNotify = "match.notify"

	// Consumer channel used by the notifier binary
	ChannelNotifier = "notifier"
)
