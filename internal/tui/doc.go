// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the belt-keeper client on
// Bubble Tea.
//
// [RootModel] routes between the account, login, edit and progress pages.
// Pages never hold account data themselves: every View reads a fresh
// snapshot from the account service, and a periodic tick repaints the screen
// so results of background work (such as a downloaded school logo) appear
// without user input.
package tui
