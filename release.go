package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type releaseInfo struct {
	TagName string         `json:"tag_name"`
	Assets  []releaseAsset `json:"assets"`
}

var releaseClient = resty.New()

// releaseHandler resolves the download link of the latest desktop build from
// the GitHub repo named in RELEASE_REPO ("owner/name"). When the release has
// no Windows asset, the releases page itself is returned as the link.
func releaseHandler(c *gin.Context) {
	repo := os.Getenv("RELEASE_REPO")
	if repo == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "release repo is not configured"})
		return
	}

	var info releaseInfo
	resp, err := releaseClient.R().
		SetHeader("Accept", "application/vnd.github+json").
		SetResult(&info).
		Get("https://api.github.com/repos/" + repo + "/releases/latest")
	if err != nil || resp.IsError() {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch latest release"})
		return
	}

	link := "https://github.com/" + repo + "/releases/latest"
	for _, a := range info.Assets {
		if strings.HasSuffix(strings.ToLower(a.Name), ".exe") {
			link = a.BrowserDownloadURL
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"version": info.TagName, "download_url": link})
}
