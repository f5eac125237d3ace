// Package github reads closed pull requests of one repository through the
// GitHub REST API.
//
// # Authentication
//
// A personal access token is taken from the environment variable named in
// the repository configuration (GITHUB_TOKEN by default) and sent through a
// static oauth2 token source. Without a token the client runs anonymously,
// which GitHub limits to 60 requests per hour; a full history of a busy
// repository needs a token.
//
// # Rate Limiting
//
// Requests go through a dual-strategy limiter:
//
//  1. Proactive throttling: a token bucket spaces requests out so that a
//     run never burns through the hourly quota.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset are
//     read from every response. When fewer than MinBuffer requests remain,
//     the next request waits for the reset.
//
// # Paging
//
// Source.FetchPage requests one page of closed pull requests with
// per_page=100. Paging itself is driven by the caller, which stops at the
// first page holding fewer than 100 records.
//
// # Record Mapping
//
// The issue number of a record is taken from the trailing segment of its
// API URL ("/pulls/1234"), falling back to the number field. Label names
// keep the order GitHub returns them in.
package github
