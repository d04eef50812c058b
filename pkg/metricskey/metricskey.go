package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsToolCallsSucceeded is base for counter metric for tool calls that returned data
	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsInvalidInput = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_invalid_input",
		Help:         "stats_tool_calls_invalid_input provides total tool calls rejected by input validation",
		RequiredTags: []string{"tool"},
	}

	StatsBackendCalls = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_backend_calls",
		Help:         "stats_backend_calls provides total calls to the pricing backend",
		RequiredTags: []string{"operation"},
	}

	StatsBackendCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_backend_calls_failed",
		Help:         "stats_backend_calls_failed provides total calls to the pricing backend that failed",
		RequiredTags: []string{"operation", "status"},
	}

	StatsFallbackUsed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_fallback_used",
		Help:         "stats_fallback_used provides total estimates served from the company default price range",
		RequiredTags: []string{"operation"},
	}

	StatsFallbackFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_fallback_failed",
		Help:         "stats_fallback_failed provides total estimates where the company price range could not be derived",
		RequiredTags: []string{"operation"},
	}
)

// Perf
var (
	PerfBackendCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_backend_call",
		Help:         "perf_backend_call provides duration of pricing backend call",
		RequiredTags: []string{"operation"},
	}

	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfBackendCall,
	&PerfToolCall,
	&StatsBackendCalls,
	&StatsBackendCallsFailed,
	&StatsFallbackFailed,
	&StatsFallbackUsed,
	&StatsToolCallsFailed,
	&StatsToolCallsInvalidInput,
	&StatsToolCallsSucceeded,
}
