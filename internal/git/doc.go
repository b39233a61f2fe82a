// Package git provides Git operations via exec for the hulo CLI.
//
// The package shells out to the git executable and translates failures into
// *output.ExitError values. hulo only needs a handful of facts about the
// working tree a log entry is written from:
//
//	git.HasMarker(dir)     // does dir contain .git?
//	git.UserName(dir)      // user.name from git config
//	git.CurrentBranch(dir) // checked-out branch
//	git.RepoName(dir)      // origin remote name or top-level directory name
//
// For other commands, use RunIn or RunContext:
//
//	out, err := git.RunIn(dir, "status", "--short")
package git
