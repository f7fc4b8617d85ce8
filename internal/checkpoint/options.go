package checkpoint

const (
	// DefaultBatchSize is the change-feed window size used when no explicit
	// batch size is configured.
	DefaultBatchSize = 10

	// reservedIDPrefix marks store-internal design documents, which are
	// never replicated.
	reservedIDPrefix = "_design/"
)

type options struct {
	batchSize          int
	syncRevisions      bool
	lastPulledRevField string
}

func defaultOptions() options {
	return options{batchSize: DefaultBatchSize}
}

// Option configures a [PushManager].
type Option func(*options)

// WithBatchSize sets the change-feed window size. Values below 1 are ignored.
func WithBatchSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// WithSyncRevisions enables latest-winner refresh: selected documents are
// re-fetched from the store after filtering, so the emitted body reflects
// mutations that landed between the feed read and batch assembly.
func WithSyncRevisions(enabled bool) Option {
	return func(o *options) {
		o.syncRevisions = enabled
	}
}

// WithLastPulledRevField names the document body field that records the
// revision a document had when it was last pulled from the remote. A
// document whose current revision still equals that field has nothing new
// to push. An empty name disables this filter.
func WithLastPulledRevField(name string) Option {
	return func(o *options) {
		o.lastPulledRevField = name
	}
}
