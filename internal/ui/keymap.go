package ui

import tea "github.com/charmbracelet/bubbletea"

type KeyMap struct {
	Edit        tea.Key
	Load        tea.Key
	Clear       tea.Key
	NextView    tea.Key
	PrevView    tea.Key
	Sort        tea.Key
	NextTable   tea.Key
	PrevTable   tea.Key
	Filter      tea.Key
	ClearFilter tea.Key
	Export      tea.Key
	CopyTable   tea.Key
	Settings    tea.Key
	AppLogs     tea.Key
	Help        tea.Key
	Quit        tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'i'}},
		Load:        tea.Key{Type: tea.KeyEnter},
		Clear:       tea.Key{Type: tea.KeyRunes, Runes: []rune{'x'}},
		NextView:    tea.Key{Type: tea.KeyTab},
		PrevView:    tea.Key{Type: tea.KeyShiftTab},
		Sort:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'s'}},
		NextTable:   tea.Key{Type: tea.KeyRunes, Runes: []rune{']'}},
		PrevTable:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'['}},
		Filter:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'f'}},
		ClearFilter: tea.Key{Type: tea.KeyRunes, Runes: []rune{'F'}},
		Export:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'e'}},
		CopyTable:   tea.Key{Type: tea.KeyRunes, Runes: []rune{'c'}},
		Settings:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'o'}},
		AppLogs:     tea.Key{Type: tea.KeyRunes, Runes: []rune{'L'}},
		Help:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'?'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}
