// Package runtime wires storage and configuration into a single-node
// pixelwar instance. Server commands build a Runtime once and hand the
// opened logs to the engines and surfaces.
package runtime
