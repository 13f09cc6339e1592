// Package config provides loading and environment overlay for pixelwar
// configuration: canvas dimensions, stream naming, consumer-group names,
// history buffer capacities, and consumer-loop tuning.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/pixelwar.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	rt, _ := runtime.Open(runtime.Options{DataDir: dir, Fsync: pebblestore.FsyncModeAlways, Config: cfg})
//	defer rt.Close()
package config
