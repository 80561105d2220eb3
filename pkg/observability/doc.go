/*
Package observability provides tools for monitoring the gridwalk engine.

It turns engine lifecycle events into Prometheus metrics and structured log
records. Both are plain domain.LifecycleHooks, so they can be combined and
passed to gridwalk.WithLifecycleHooks.
*/
package observability
