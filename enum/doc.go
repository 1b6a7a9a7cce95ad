// Package enum provides lazy, pull-based directory tree enumeration with
// normalized file attributes across platforms.
//
// The package reconciles two metadata models behind one view:
//   - Attribute-bit platforms (Windows): hidden/read-only/reparse flags are
//     resolved at listing time and read directly from the entry payload.
//   - Mode/stat platforms (Unix): the listing step yields cheap file-type
//     bits; full attributes require one deferred stat, executed at most once
//     per entry and cached so a concurrent delete or rename cannot change
//     already-observed values. Hidden follows the leading-dot convention,
//     read-only means no owner-write permission.
//
// Enumeration is single-threaded and pre-order depth-first. Entries are
// yielded in the order the operating system supplies them within a level.
// Each advance consumes exactly one raw entry and produces exactly one
// transformed value.
//
// Example Usage:
//
//	w := enum.New("/var/log", enum.Options{Recurse: true}, enum.Callbacks[string]{
//		Include:   func(e *enum.Entry) bool { return !e.IsHidden() },
//		Transform: func(e *enum.Entry) string { return e.Path() },
//	})
//	defer w.Close()
//	for w.Next() {
//		fmt.Println(w.Value())
//	}
//	if err := w.Err(); err != nil {
//		log.Fatal(err)
//	}
package enum
