// Package services implements the driving port interfaces.
//
// A release run flows through the stages in this package in order:
// FetchAll pages through the source, the Classifier resolves module and
// description, the VersionNormalizer maps milestones onto shipped versions
// and the aggregator helpers group and order entries for the renderers.
// ReleaseService ties the stages together and hands rendered artifacts to
// the sink.
//
// Services depend only on domain and the driven ports.
package services
