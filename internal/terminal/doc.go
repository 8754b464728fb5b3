// Package terminal provides the byte streams the editor reads keys from and
// paints to.
//
// Two backends exist:
//
//   - tty: opens the controlling terminal through tcell's Tty layer, switches
//     it to raw mode and tracks its width across resizes
//   - stdio: uses standard input and output directly, entering raw mode with
//     x/term only when standard input is a terminal; piped input passes
//     through untouched, which makes scripted sessions possible
//
// Open with BackendAuto picks tty when standard input is a terminal and
// stdio otherwise.
package terminal
