// Package locale holds the UI texts and date layouts of the catalog page
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Default is used when no configured tag matches a supported language
const Default = "ru"

// Strings are the user visible texts of the catalog and error pages
type Strings struct {
	Title        string
	Subtitle     string
	FilesLabel   string
	FoldersLabel string
	RootFolder   string
	EmptyTitle   string
	EmptyHint    string // %s is the pages directory name
	Refresh      string
	RefreshAll   string
	ErrorTitle   string
	ErrorHint    string
	NotFound     string
	BackHome     string
}

// Locale couples a language with its texts and short date layout
type Locale struct {
	Tag        language.Tag
	Strings    Strings
	DateLayout string
}

var supported = []*Locale{
	{
		Tag: language.Russian,
		Strings: Strings{
			Title:        "Каталог файлов",
			Subtitle:     "Конспекты",
			FilesLabel:   "файлов",
			FoldersLabel: "папок",
			RootFolder:   "Корневая папка",
			EmptyTitle:   "Пока что здесь пусто",
			EmptyHint:    "Добавьте HTML файлы в папку %s чтобы они появились здесь",
			Refresh:      "Обновить",
			RefreshAll:   "Обновить каталог",
			ErrorTitle:   "Ошибка",
			ErrorHint:    "Не удалось прочитать папку с файлами",
			NotFound:     "Страница не найдена",
			BackHome:     "На главную",
		},
		DateLayout: "02.01.2006",
	},
	{
		Tag: language.English,
		Strings: Strings{
			Title:        "File catalog",
			Subtitle:     "Notes",
			FilesLabel:   "files",
			FoldersLabel: "folders",
			RootFolder:   "Root folder",
			EmptyTitle:   "Nothing here yet",
			EmptyHint:    "Add HTML files to the %s folder to see them here",
			Refresh:      "Refresh",
			RefreshAll:   "Refresh catalog",
			ErrorTitle:   "Error",
			ErrorHint:    "The pages directory could not be read",
			NotFound:     "Page not found",
			BackHome:     "Back to catalog",
		},
		DateLayout: "1/2/2006",
	},
	{
		Tag: language.German,
		Strings: Strings{
			Title:        "Dateikatalog",
			Subtitle:     "Notizen",
			FilesLabel:   "Dateien",
			FoldersLabel: "Ordner",
			RootFolder:   "Hauptordner",
			EmptyTitle:   "Hier ist noch nichts",
			EmptyHint:    "Lege HTML-Dateien im Ordner %s ab, damit sie hier erscheinen",
			Refresh:      "Aktualisieren",
			RefreshAll:   "Katalog aktualisieren",
			ErrorTitle:   "Fehler",
			ErrorHint:    "Das Verzeichnis konnte nicht gelesen werden",
			NotFound:     "Seite nicht gefunden",
			BackHome:     "Zum Katalog",
		},
		DateLayout: "02.01.2006",
	},
}

// first entry of the matcher list is the fallback
var matcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, l := range supported {
		tags[i] = l.Tag
	}
	return tags
}())

// Lookup returns the supported locale closest to tag.
// Empty, malformed or unsupported tags yield the default locale.
func Lookup(tag string) *Locale {
	if tag == "" {
		tag = Default
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return supported[0]
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Lang returns the BCP 47 base language for the html lang attribute
func (l *Locale) Lang() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// FormatDate renders t as a short local date
func (l *Locale) FormatDate(t time.Time) string {
	return t.Local().Format(l.DateLayout)
}

// FormatKB renders a byte count as kilobytes with one decimal
func FormatKB(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
