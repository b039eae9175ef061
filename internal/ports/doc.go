// Package ports defines the interfaces (ports) that connect the command layer
// to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// commands need from the robot controller and from storage without specifying
// how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [FrameStore]: Reads and writes tool and user frames
//   - [RegisterStore]: Reads and writes R, PR and SR registers
//   - [Controller]: A live controller connection (frames + registers)
//   - [Connector]: Hands out the cached controller connection
//   - [Journal]: Persists tool-frame shift records
//   - [Plugin]: Background component such as the shift watcher
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The command layer (internal/commands) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with an
// in-memory image, a JSON state file and a SQLite journal.
package ports
