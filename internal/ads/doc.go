// Package ads provides the ad monetization core: the capability surface for
// ad backends, the per-kind lifecycle state machine, and the mock backend
// used to exercise both without a real ad-network SDK. It is structured into
// small files by concern:
//
//   - manager.go: Manager capability surface and kind-generic derived ops.
//   - countdown.go: one-shot tick-driven timer.
//   - lifecycle.go: per-kind lifecycle states.
//   - mock.go: mock backend (MockConfig, NewMock, operations, Advance).
//   - presenter.go: outbound presentation collaborator contract.
//   - status.go: read-only status snapshots.
//   - metrics.go: Prometheus counters.
//
// Every operation is a total function returning a success flag: misuse
// (wrong state, uninitialized manager) yields false and no side effects,
// never a panic. All state mutation must stay on the single consumer tick;
// the only cross-context bridge is the injected event queue.
package ads
