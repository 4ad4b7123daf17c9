package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	GraphBuilt(summary GraphSummary)
	RunStarted(info RunInfo)
	RunProgress(progress ProgressSnapshot)
	RunComplete(outcome RunOutcome)
	Warning(message string)
	Error(err ReporterError)
	OperationComplete(message string)
	Verbose(message string)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) GraphBuilt(GraphSummary)      {}
func (NullReporter) RunStarted(RunInfo)           {}
func (NullReporter) RunProgress(ProgressSnapshot) {}
func (NullReporter) RunComplete(RunOutcome)       {}
func (NullReporter) Warning(string)               {}
func (NullReporter) Error(ReporterError)          {}
func (NullReporter) OperationComplete(string)     {}
func (NullReporter) Verbose(string)               {}
