package telegram

import "fmt"

const (
	genericErrorMsg = "⚠️ Что-то пошло не так. Пожалуйста, попробуйте позже."

	subscribeBtnText = "📰 Включить дайджест"
	aboutBtnText     = "ℹ️ О боте"

	callbackSubscribe = "digest_on"
	callbackAbout     = "about"
)

// Texts carries the deployment specific values rendered into replies.
type Texts struct {
	DigestTime  string
	WebAppURL   string
	BotUsername string
}

func (t Texts) welcome() string {
	return "🏘 Добро пожаловать в бот Испанских Кварталов!\n\n" +
		"Здесь вы можете:\n" +
		"• Получать новости района\n" +
		fmt.Sprintf("• Подписаться на ежедневный дайджест (%s)\n", t.DigestTime) +
		"• Просматривать карту бизнеса\n\n" +
		"Выберите действие:"
}

func (t Texts) subscription(subscribed bool) string {
	if subscribed {
		return "✅ Вы подписались на ежедневный дайджест!\n\n" +
			fmt.Sprintf("📬 Каждый день в %s вы будете получать краткую сводку новостей района.\n\n", t.DigestTime) +
			"Чтобы отписаться, используйте команду /digest_off"
	}
	return "❌ Вы отписались от ежедневного дайджеста.\n\n" +
		"Чтобы снова подписаться, используйте команду /digest_on"
}

func (t Texts) status(subscribed bool) string {
	status := "❌ Вы не подписаны на дайджест"
	if subscribed {
		status = "✅ Вы подписаны на ежедневный дайджест"
	}
	return status + "\n\n" +
		"Команды:\n" +
		"/digest_on - Подписаться\n" +
		"/digest_off - Отписаться"
}

func (t Texts) help() string {
	return "📚 Доступные команды:\n\n" +
		"/start - Главное меню\n" +
		"/digest_on - Подписаться на дайджест\n" +
		"/digest_off - Отписаться от дайджеста\n" +
		"/digest_status - Статус подписки\n" +
		"/help - Эта справка\n\n" +
		"🌐 Веб-приложение:\n" +
		t.WebAppURL
}

func (t Texts) about() string {
	return "ℹ️ О боте\n\n" +
		"Этот бот создан для жителей ЖК Испанские Кварталы.\n\n" +
		"🔗 Веб-приложение: " + t.WebAppURL + "\n" +
		"📱 Telegram: @" + t.BotUsername
}
