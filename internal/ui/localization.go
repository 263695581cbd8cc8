package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// DefaultLanguage is used for "system" and unknown codes
const DefaultLanguage = "en"

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeyCancel             = "cancel"
	KeySave               = "save"
	KeyBrowse             = "browse"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadDirectory  = "download_directory"
	KeyAutoReveal         = "auto_reveal"
	KeySettingsSaved      = "settings_saved"
	KeyEnterURL           = "enter_url"
	KeyQuality            = "quality"
	KeySelectQuality      = "select_quality"
	KeyFetchingFormats    = "fetching_formats"
	KeyPreparingDownload  = "preparing_download"
	KeyStartingDownload   = "starting_download"
	KeyDownloading        = "downloading"
	KeySpeed              = "speed"
	KeyCancelling         = "cancelling"
	KeyDownloadCompleted  = "download_completed"
	KeyDownloadSavedTo    = "download_saved_to"
	KeyDownloadCancelled  = "download_cancelled"
	KeyCancelTitle        = "cancel_title"
	KeyErrorTitle         = "error_title"
	KeySuccessTitle       = "success_title"
	KeyMissingInput       = "missing_input"
	KeyInvalidURL         = "invalid_url"
	KeyPrivateVideo       = "private_video"
	KeyVideoUnavailable   = "video_unavailable"
	KeyAgeRestricted      = "age_restricted"
	KeyDownloadErrorLabel = "download_error_label"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyErrorCreatingDir   = "error_creating_dir"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "" || lang == "system" {
		lang = DefaultLanguage
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// languageCodes returns the available codes in a stable order
func (l *Localization) languageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "ytgrab",
		KeyDownload:           "Download",
		KeyCancel:             "Cancel",
		KeySave:               "Save",
		KeyBrowse:             "Browse",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadDirectory:  "Download Directory",
		KeyAutoReveal:         "Show file in folder when done",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyEnterURL:           "Paste a video URL (https://youtube.com/watch?v=...)",
		KeyQuality:            "Quality",
		KeySelectQuality:      "Select quality",
		KeyFetchingFormats:    "Fetching available resolutions…",
		KeyPreparingDownload:  "Preparing download…",
		KeyStartingDownload:   "Starting download in %s",
		KeyDownloading:        "Downloading…",
		KeySpeed:              "Speed: %s/s",
		KeyCancelling:         "Cancelling…",
		KeyDownloadCompleted:  "Download completed",
		KeyDownloadSavedTo:    "Video '%s' was saved to %s",
		KeyDownloadCancelled:  "Download cancelled",
		KeyCancelTitle:        "Cancelled",
		KeyErrorTitle:         "Error",
		KeySuccessTitle:       "Success",
		KeyMissingInput:       "Please enter a video URL and choose a quality",
		KeyInvalidURL:         "Invalid URL",
		KeyPrivateVideo:       "This video is private",
		KeyVideoUnavailable:   "This video is not available",
		KeyAgeRestricted:      "This video is age-restricted",
		KeyDownloadErrorLabel: "Download failed",
		KeyErrorOpeningFile:   "Error opening file",
		KeyErrorCreatingDir:   "Cannot create download directory",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "ytgrab",
		KeyDownload:           "Скачать",
		KeyCancel:             "Отмена",
		KeySave:               "Сохранить",
		KeyBrowse:             "Обзор",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyAutoReveal:         "Показать файл в папке после загрузки",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyEnterURL:           "Вставьте ссылку на видео (https://youtube.com/watch?v=...)",
		KeyQuality:            "Качество",
		KeySelectQuality:      "Выберите качество",
		KeyFetchingFormats:    "Получение вариантов разрешения видеоролика…",
		KeyPreparingDownload:  "Подготовка к загрузке…",
		KeyStartingDownload:   "Начинаем загрузку в %s",
		KeyDownloading:        "Загрузка…",
		KeySpeed:              "Скорость: %s/с",
		KeyCancelling:         "Отмена загрузки…",
		KeyDownloadCompleted:  "Загрузка завершена",
		KeyDownloadSavedTo:    "Видео '%s' успешно скачано в папку %s",
		KeyDownloadCancelled:  "Загрузка была отменена",
		KeyCancelTitle:        "Отмена",
		KeyErrorTitle:         "Ошибка",
		KeySuccessTitle:       "Успех",
		KeyMissingInput:       "Пожалуйста, введите ссылку на видео и выберите качество",
		KeyInvalidURL:         "Неверный URL",
		KeyPrivateVideo:       "Видео является приватным",
		KeyVideoUnavailable:   "Видео недоступно",
		KeyAgeRestricted:      "Видео имеет возрастные ограничения",
		KeyDownloadErrorLabel: "Произошла ошибка при скачивании",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyErrorCreatingDir:   "Не удалось создать папку загрузки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "ytgrab",
		KeyDownload:           "Baixar",
		KeyCancel:             "Cancelar",
		KeySave:               "Salvar",
		KeyBrowse:             "Navegar",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyAutoReveal:         "Mostrar arquivo na pasta ao concluir",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyEnterURL:           "Cole a URL do vídeo (https://youtube.com/watch?v=...)",
		KeyQuality:            "Qualidade",
		KeySelectQuality:      "Selecione a qualidade",
		KeyFetchingFormats:    "Obtendo resoluções disponíveis…",
		KeyPreparingDownload:  "Preparando download…",
		KeyStartingDownload:   "Iniciando download em %s",
		KeyDownloading:        "Baixando…",
		KeySpeed:              "Velocidade: %s/s",
		KeyCancelling:         "Cancelando…",
		KeyDownloadCompleted:  "Download concluído",
		KeyDownloadSavedTo:    "O vídeo '%s' foi salvo em %s",
		KeyDownloadCancelled:  "Download cancelado",
		KeyCancelTitle:        "Cancelado",
		KeyErrorTitle:         "Erro",
		KeySuccessTitle:       "Sucesso",
		KeyMissingInput:       "Digite a URL do vídeo e escolha a qualidade",
		KeyInvalidURL:         "URL inválida",
		KeyPrivateVideo:       "Este vídeo é privado",
		KeyVideoUnavailable:   "Este vídeo não está disponível",
		KeyAgeRestricted:      "Este vídeo tem restrição de idade",
		KeyDownloadErrorLabel: "Erro ao baixar",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyErrorCreatingDir:   "Não foi possível criar o diretório de download",
	}
}
