package charmap

import "github.com/mobile-next/mobileinput/types"

func usLayout() Layout {
	l := Layout{
		' ':  {KeyCode: types.KeyCodeSpace},
		'\n': {KeyCode: types.KeyCodeEnter},
		'\t': {KeyCode: types.KeyCodeTab},
		',':  {KeyCode: types.KeyCodeComma},
		'.':  {KeyCode: types.KeyCodePeriod},
		'`':  {KeyCode: types.KeyCodeGrave},
		'-':  {KeyCode: types.KeyCodeMinus},
		'=':  {KeyCode: types.KeyCodeEquals},
		'[':  {KeyCode: types.KeyCodeLeftBracket},
		']':  {KeyCode: types.KeyCodeRightBracket},
		'\\': {KeyCode: types.KeyCodeBackslash},
		';':  {KeyCode: types.KeyCodeSemicolon},
		'\'': {KeyCode: types.KeyCodeApostrophe},
		'/':  {KeyCode: types.KeyCodeSlash},
		'@':  {KeyCode: types.KeyCodeAt},
		'*':  {KeyCode: types.KeyCodeStar},
		'#':  {KeyCode: types.KeyCodePound},
		'+':  {KeyCode: types.KeyCodePlus},

		'<':  {KeyCode: types.KeyCodeComma, Shift: true},
		'>':  {KeyCode: types.KeyCodePeriod, Shift: true},
		'~':  {KeyCode: types.KeyCodeGrave, Shift: true},
		'_':  {KeyCode: types.KeyCodeMinus, Shift: true},
		'{':  {KeyCode: types.KeyCodeLeftBracket, Shift: true},
		'}':  {KeyCode: types.KeyCodeRightBracket, Shift: true},
		'|':  {KeyCode: types.KeyCodeBackslash, Shift: true},
		':':  {KeyCode: types.KeyCodeSemicolon, Shift: true},
		'"':  {KeyCode: types.KeyCodeApostrophe, Shift: true},
		'?':  {KeyCode: types.KeyCodeSlash, Shift: true},
		'!':  {KeyCode: types.KeyCode1, Shift: true},
		'$':  {KeyCode: types.KeyCode0 + 4, Shift: true},
		'%':  {KeyCode: types.KeyCode0 + 5, Shift: true},
		'^':  {KeyCode: types.KeyCode0 + 6, Shift: true},
		'&':  {KeyCode: types.KeyCode0 + 7, Shift: true},
		'(':  {KeyCode: types.KeyCode9, Shift: true},
		')':  {KeyCode: types.KeyCode0, Shift: true},
	}

	for r := 'a'; r <= 'z'; r++ {
		code := types.KeyCodeA + int(r-'a')
		l[r] = Stroke{KeyCode: code}
		l[r-'a'+'A'] = Stroke{KeyCode: code, Shift: true}
	}
	for r := '0'; r <= '9'; r++ {
		l[r] = Stroke{KeyCode: types.KeyCode0 + int(r-'0')}
	}

	return l
}
