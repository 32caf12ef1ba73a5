// pkg/events/names.go
package events

// Name identifies a lifecycle event in the fixed vocabulary shared by the
// engine, the hub, and reporters.
type Name string

const (
	Coverage               Name = "coverage"
	FatalError             Name = "fatalError"
	NewSuite               Name = "newSuite"
	NewTest                Name = "newTest"
	ProxyEnd               Name = "proxyEnd"
	ProxyStart             Name = "proxyStart"
	RunEnd                 Name = "runEnd"
	RunStart               Name = "runStart"
	Run                    Name = "run"
	Destroy                Name = "destroy"
	SuiteEnd               Name = "suiteEnd"
	SuiteError             Name = "suiteError"
	SuiteStart             Name = "suiteStart"
	TestEnd                Name = "testEnd"
	TestPass               Name = "testPass"
	TestSkip               Name = "testSkip"
	TestStart              Name = "testStart"
	TunnelDownloadProgress Name = "tunnelDownloadProgress"
	TunnelEnd              Name = "tunnelEnd"
	TunnelStart            Name = "tunnelStart"
	TunnelStatus           Name = "tunnelStatus"
)

// Names returns the full vocabulary in declaration order.
func Names() []Name {
	return []Name{
		Coverage, FatalError, NewSuite, NewTest, ProxyEnd, ProxyStart,
		RunEnd, RunStart, Run, Destroy, SuiteEnd, SuiteError, SuiteStart,
		TestEnd, TestPass, TestSkip, TestStart, TunnelDownloadProgress,
		TunnelEnd, TunnelStart, TunnelStatus,
	}
}

// Reportable is satisfied by payloads that track whether any reporter
// received them. The hub marks a leading fatalError payload exactly once
// per emission, and only when at least one reporter is registered.
type Reportable interface {
	MarkReported()
}

// ErrorPayload is the payload carried by fatalError emissions. Reported
// stays false until the hub has fanned the event out to at least one
// reporter, which tells the engine whether a fallback reporting path is
// still needed.
type ErrorPayload struct {
	Message  string
	Reported bool
}

var _ Reportable = (*ErrorPayload)(nil)

// MarkReported implements Reportable.
func (e *ErrorPayload) MarkReported() { e.Reported = true }

// Error implements the error interface.
func (e *ErrorPayload) Error() string { return e.Message }
