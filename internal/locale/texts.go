package locale

var texts = map[string]map[string]string{
	// English texts
	LangEnglish: {
		KeyAppTitle:          "Playlist Downloader (MP3 Only)",
		KeyEnterURL:          "Enter Playlist URL:",
		KeyFetch:             "Fetch",
		KeyFetching:          "Fetching playlist details...",
		KeyPlaylist:          "Playlist",
		KeyUploader:          "Uploader",
		KeyVideosInPlaylist:  "Videos in playlist:",
		KeyAndMore:           "... and more",
		KeyDirectoryPrompt:   "Specify download directory:",
		KeyDownload:          "Download Playlist",
		KeyDownloadingTo:     "Downloading to: %s...",
		KeyDownloadCompleted: "Download completed!",
		KeyDownloadSummary:   "%d files, %s",
		KeyErrorFetching:     "Error fetching playlist info: %s",
		KeyFetchFailed:       "Failed to retrieve playlist details.",
		KeyErrorDownloading:  "Error downloading playlist: %s",
		KeyInvalidDirectory:  "Please specify a valid download directory.",
		KeyErrorDirectory:    "Could not prepare download directory: %s",
		KeyNoEntries:         "This playlist has no entries to download.",
		KeyConfirmDownload:   "Download %d entries to %s? [y/N] ",
		KeyConfirmRequired:   "Refusing to download without confirmation; pass --yes when stdin is not a terminal.",
		KeyDownloadCancelled: "Download cancelled.",
		KeyRateLimited:       "Rate limit exceeded",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyOpenFolder:        "Open Folder",
		KeyErrorOpeningDir:   "Error opening folder",
	},

	// Russian texts
	LangRussian: {
		KeyAppTitle:          "Загрузчик плейлистов (только MP3)",
		KeyEnterURL:          "Введите URL плейлиста:",
		KeyFetch:             "Получить",
		KeyFetching:          "Получение данных плейлиста...",
		KeyPlaylist:          "Плейлист",
		KeyUploader:          "Автор",
		KeyVideosInPlaylist:  "Видео в плейлисте:",
		KeyAndMore:           "... и другие",
		KeyDirectoryPrompt:   "Укажите папку для загрузки:",
		KeyDownload:          "Скачать плейлист",
		KeyDownloadingTo:     "Загрузка в: %s...",
		KeyDownloadCompleted: "Загрузка завершена!",
		KeyDownloadSummary:   "файлов: %d, %s",
		KeyErrorFetching:     "Ошибка получения данных плейлиста: %s",
		KeyFetchFailed:       "Не удалось получить данные плейлиста.",
		KeyErrorDownloading:  "Ошибка загрузки плейлиста: %s",
		KeyInvalidDirectory:  "Пожалуйста, укажите корректную папку для загрузки.",
		KeyErrorDirectory:    "Не удалось подготовить папку для загрузки: %s",
		KeyNoEntries:         "В плейлисте нет записей для загрузки.",
		KeyConfirmDownload:   "Скачать %d записей в %s? [y/N] ",
		KeyConfirmRequired:   "Загрузка без подтверждения невозможна; укажите --yes, если stdin не терминал.",
		KeyDownloadCancelled: "Загрузка отменена.",
		KeyRateLimited:       "Превышен лимит запросов",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузок",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyOpenFolder:        "Открыть папку",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
	},

	// Portuguese texts
	LangPortuguese: {
		KeyAppTitle:          "Baixador de Playlists (apenas MP3)",
		KeyEnterURL:          "Digite a URL da playlist:",
		KeyFetch:             "Buscar",
		KeyFetching:          "Buscando detalhes da playlist...",
		KeyPlaylist:          "Playlist",
		KeyUploader:          "Autor",
		KeyVideosInPlaylist:  "Vídeos na playlist:",
		KeyAndMore:           "... e mais",
		KeyDirectoryPrompt:   "Especifique o diretório de download:",
		KeyDownload:          "Baixar Playlist",
		KeyDownloadingTo:     "Baixando para: %s...",
		KeyDownloadCompleted: "Download concluído!",
		KeyDownloadSummary:   "%d arquivos, %s",
		KeyErrorFetching:     "Erro ao buscar informações da playlist: %s",
		KeyFetchFailed:       "Falha ao obter detalhes da playlist.",
		KeyErrorDownloading:  "Erro ao baixar playlist: %s",
		KeyInvalidDirectory:  "Por favor, especifique um diretório de download válido.",
		KeyErrorDirectory:    "Não foi possível preparar o diretório de download: %s",
		KeyNoEntries:         "Esta playlist não tem itens para baixar.",
		KeyConfirmDownload:   "Baixar %d itens para %s? [y/N] ",
		KeyConfirmRequired:   "Download sem confirmação recusado; use --yes quando stdin não for um terminal.",
		KeyDownloadCancelled: "Download cancelado.",
		KeyRateLimited:       "Limite de requisições excedido",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyOpenFolder:        "Abrir Pasta",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
	},
}
