// Package queuelog is a small asynchronous console and file logger.
//
// Callers on any goroutine queue leveled messages; one writer goroutine
// renders nothing itself and only copies the precomputed lines to each sink,
// in exactly the order the entries were queued.
//
// Key features
//   - Non-blocking Emit: producers only take a mutex to append to the queue
//   - Fixed line template: [YYYY-MM-DD HH:MM:SS][LEVEL] message
//   - ANSI-colored level tags on the console, plain text in the log file
//   - Debug filtering at enqueue time
//   - Stop drains the backlog and joins the writer before returning
//   - Pluggable sinks for destinations beyond the console and the file
//
// Typical usage
//
//	svc := queuelog.NewService()
//	if err := svc.Setup("./log.txt", true, false); err != nil { panic(err) }
//	defer svc.Stop()
//
//	svc.Info("starting")
//	svc.Warnf("retrying in %s", backoff)
package queuelog
