package bot

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translations of the bot replies, keyed by the English format strings.
var translations = map[language.Tag]map[string]string{
	language.Russian: {
		":wave: Send me a message and I will show it with links, mentions and hashtags marked up.\nUse /prefix NAME to change the class prefix (now %q), /prefix without a name resets it.": ":wave: Пришлите мне сообщение, и я покажу его с размеченными ссылками, упоминаниями и хэштегами.\nКоманда /prefix ИМЯ меняет префикс классов (сейчас %q), /prefix без имени сбрасывает его.",
		":warning: Prefix must start with a letter and contain only letters, digits, '-' and '_'.": ":warning: Префикс должен начинаться с буквы и содержать только буквы, цифры, '-' и '_'.",
		":white_check_mark: Class prefix is reset to %q.": ":white_check_mark: Префикс классов сброшен на %q.",
		":white_check_mark: Class prefix is set to %q.":   ":white_check_mark: Префикс классов изменён на %q.",
		":shrug: Unknown command":                         ":shrug: Неизвестная команда",
		":shrug: Can not format a message without a text": ":shrug: Не могу разметить сообщение без текста",
	},
}

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
