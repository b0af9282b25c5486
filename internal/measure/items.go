package measure

// DebugMux — входы debug mux GCC MSM8953. Клоки APCS проходят через
// собственный mux кластера (MuxReg/MuxVal) и делитель Mult.
var DebugMux = []Item{
	{Name: "apcs_c0_clk", Value: 0x16a, Mult: 16, MuxReg: 0x0b11101c, MuxVal: 0x000},
	{Name: "apcs_c1_clk", Value: 0x16a, Mult: 16, MuxReg: 0x0b11101c, MuxVal: 0x100},
	{Name: "apcs_cci_clk", Value: 0x16a, Mult: 4, MuxReg: 0x0b11101c, MuxVal: 0x200},
	{Name: "snoc_clk", Value: 0x000},
	{Name: "sysmmnoc_clk", Value: 0x001},
	{Name: "pcnoc_clk", Value: 0x008},
	{Name: "bimc_clk", Value: 0x15a},
	{Name: "ipa_clk", Value: 0x1b0},
	{Name: "gcc_dcc_clk", Value: 0x00d},
	{Name: "gcc_pcnoc_usb3_axi_clk", Value: 0x00e},
	{Name: "gcc_gp1_clk", Value: 0x010},
	{Name: "gcc_gp2_clk", Value: 0x011},
	{Name: "gcc_gp3_clk", Value: 0x012},
	{Name: "gcc_apc0_droop_detector_gpll0_clk", Value: 0x01c},
	{Name: "gcc_camss_csi2phytimer_clk", Value: 0x01d},
	{Name: "gcc_apc1_droop_detector_gpll0_clk", Value: 0x01f},
	{Name: "gcc_bimc_gfx_clk", Value: 0x02d},
	{Name: "gcc_mss_cfg_ahb_clk", Value: 0x030},
	{Name: "gcc_mss_q6_bimc_axi_clk", Value: 0x031},
	{Name: "gcc_qdss_dap_clk", Value: 0x049},
	{Name: "gcc_apss_tcu_async_clk", Value: 0x050},
	{Name: "gcc_mdp_tbu_clk", Value: 0x051},
	{Name: "gcc_venus_tbu_clk", Value: 0x054},
	{Name: "gcc_vfe_tbu_clk", Value: 0x05a},
	{Name: "gcc_smmu_cfg_clk", Value: 0x05b},
	{Name: "gcc_jpeg_tbu_clk", Value: 0x05c},
	{Name: "gcc_usb30_master_clk", Value: 0x060},
	{Name: "gcc_usb30_sleep_clk", Value: 0x061},
	{Name: "gcc_usb30_mock_utmi_clk", Value: 0x062},
	{Name: "gcc_usb_phy_cfg_ahb_clk", Value: 0x063},
	{Name: "gcc_usb3_pipe_clk", Value: 0x066},
	{Name: "gcc_usb3_aux_clk", Value: 0x067},
	{Name: "gcc_sdcc1_apps_clk", Value: 0x068},
	{Name: "gcc_sdcc1_ahb_clk", Value: 0x069},
	{Name: "gcc_sdcc1_ice_core_clk", Value: 0x06a},
	{Name: "gcc_sdcc2_apps_clk", Value: 0x070},
	{Name: "gcc_sdcc2_ahb_clk", Value: 0x071},
	{Name: "gcc_blsp1_ahb_clk", Value: 0x088},
	{Name: "gcc_blsp1_qup1_spi_apps_clk", Value: 0x08a},
	{Name: "gcc_blsp1_qup1_i2c_apps_clk", Value: 0x08b},
	{Name: "gcc_blsp1_uart1_apps_clk", Value: 0x08c},
	{Name: "gcc_blsp1_qup2_spi_apps_clk", Value: 0x08e},
	{Name: "gcc_blsp1_qup2_i2c_apps_clk", Value: 0x090},
	{Name: "gcc_blsp1_uart2_apps_clk", Value: 0x091},
	{Name: "gcc_blsp1_qup3_spi_apps_clk", Value: 0x093},
	{Name: "gcc_blsp1_qup3_i2c_apps_clk", Value: 0x094},
	{Name: "gcc_blsp1_qup4_spi_apps_clk", Value: 0x095},
	{Name: "gcc_blsp1_qup4_i2c_apps_clk", Value: 0x096},
	{Name: "gcc_blsp2_ahb_clk", Value: 0x098},
	{Name: "gcc_blsp2_qup1_spi_apps_clk", Value: 0x09a},
	{Name: "gcc_blsp2_qup1_i2c_apps_clk", Value: 0x09b},
	{Name: "gcc_blsp2_uart1_apps_clk", Value: 0x09c},
	{Name: "gcc_blsp2_qup2_spi_apps_clk", Value: 0x09e},
	{Name: "gcc_blsp2_qup2_i2c_apps_clk", Value: 0x0a0},
	{Name: "gcc_blsp2_uart2_apps_clk", Value: 0x0a1},
	{Name: "gcc_blsp2_qup3_spi_apps_clk", Value: 0x0a3},
	{Name: "gcc_blsp2_qup3_i2c_apps_clk", Value: 0x0a4},
	{Name: "gcc_blsp2_qup4_spi_apps_clk", Value: 0x0a5},
	{Name: "gcc_blsp2_qup4_i2c_apps_clk", Value: 0x0a6},
	{Name: "gcc_camss_ahb_clk", Value: 0x0a8},
	{Name: "gcc_camss_top_ahb_clk", Value: 0x0a9},
	{Name: "gcc_camss_micro_ahb_clk", Value: 0x0aa},
	{Name: "gcc_camss_gp0_clk", Value: 0x0ab},
	{Name: "gcc_camss_gp1_clk", Value: 0x0ac},
	{Name: "gcc_camss_mclk0_clk", Value: 0x0ad},
	{Name: "gcc_camss_mclk1_clk", Value: 0x0ae},
	{Name: "gcc_camss_cci_clk", Value: 0x0af},
	{Name: "gcc_camss_cci_ahb_clk", Value: 0x0b0},
	{Name: "gcc_camss_csi0phytimer_clk", Value: 0x0b1},
	{Name: "gcc_camss_csi1phytimer_clk", Value: 0x0b2},
	{Name: "gcc_camss_jpeg0_clk", Value: 0x0b3},
	{Name: "gcc_camss_jpeg_ahb_clk", Value: 0x0b4},
	{Name: "gcc_camss_jpeg_axi_clk", Value: 0x0b5},
	{Name: "gcc_camss_vfe0_clk", Value: 0x0b8},
	{Name: "gcc_camss_cpp_clk", Value: 0x0b9},
	{Name: "gcc_camss_cpp_ahb_clk", Value: 0x0ba},
	{Name: "gcc_camss_vfe_ahb_clk", Value: 0x0bb},
	{Name: "gcc_camss_vfe_axi_clk", Value: 0x0bc},
	{Name: "gcc_camss_csi_vfe0_clk", Value: 0x0bf},
	{Name: "gcc_camss_csi0_clk", Value: 0x0c0},
	{Name: "gcc_camss_csi0_ahb_clk", Value: 0x0c1},
	{Name: "gcc_camss_csi0phy_clk", Value: 0x0c2},
	{Name: "gcc_camss_csi0rdi_clk", Value: 0x0c3},
	{Name: "gcc_camss_csi0pix_clk", Value: 0x0c4},
	{Name: "gcc_camss_csi1_clk", Value: 0x0c5},
	{Name: "gcc_camss_csi1_ahb_clk", Value: 0x0c6},
	{Name: "gcc_camss_csi1phy_clk", Value: 0x0c7},
	{Name: "gcc_pdm_ahb_clk", Value: 0x0d0},
	{Name: "gcc_pdm2_clk", Value: 0x0d2},
	{Name: "gcc_prng_ahb_clk", Value: 0x0d8},
	{Name: "gcc_mdss_byte1_clk", Value: 0x0da},
	{Name: "gcc_mdss_esc1_clk", Value: 0x0db},
	{Name: "gcc_camss_csi0_csiphy_3p_clk", Value: 0x0dc},
	{Name: "gcc_camss_csi1_csiphy_3p_clk", Value: 0x0dd},
	{Name: "gcc_camss_csi2_csiphy_3p_clk", Value: 0x0de},
	{Name: "gcc_camss_csi1rdi_clk", Value: 0x0e0},
	{Name: "gcc_camss_csi1pix_clk", Value: 0x0e1},
	{Name: "gcc_camss_ispif_ahb_clk", Value: 0x0e2},
	{Name: "gcc_camss_csi2_clk", Value: 0x0e3},
	{Name: "gcc_camss_csi2_ahb_clk", Value: 0x0e4},
	{Name: "gcc_camss_csi2phy_clk", Value: 0x0e5},
	{Name: "gcc_camss_csi2rdi_clk", Value: 0x0e6},
	{Name: "gcc_camss_csi2pix_clk", Value: 0x0e7},
	{Name: "gcc_cpp_tbu_clk", Value: 0x0e9},
	{Name: "gcc_rbcpr_gfx_clk", Value: 0x0f0},
	{Name: "gcc_boot_rom_ahb_clk", Value: 0x0f8},
	{Name: "gcc_crypto_clk", Value: 0x138},
	{Name: "gcc_crypto_axi_clk", Value: 0x139},
	{Name: "gcc_crypto_ahb_clk", Value: 0x13a},
	{Name: "gcc_bimc_gpu_clk", Value: 0x157},
	{Name: "gcc_apss_ahb_clk", Value: 0x168},
	{Name: "gcc_apss_axi_clk", Value: 0x169},
	{Name: "gcc_vfe1_tbu_clk", Value: 0x199},
	{Name: "gcc_camss_csi_vfe1_clk", Value: 0x1a0},
	{Name: "gcc_camss_vfe1_clk", Value: 0x1a1},
	{Name: "gcc_camss_vfe1_ahb_clk", Value: 0x1a2},
	{Name: "gcc_camss_vfe1_axi_clk", Value: 0x1a3},
	{Name: "gcc_camss_cpp_axi_clk", Value: 0x1a4},
	{Name: "gcc_venus0_core0_vcodec0_clk", Value: 0x1b8},
	{Name: "gcc_camss_mclk2_clk", Value: 0x1bd},
	{Name: "gcc_camss_mclk3_clk", Value: 0x1bf},
	{Name: "gcc_oxili_aon_clk", Value: 0x1e8},
	{Name: "gcc_oxili_timer_clk", Value: 0x1e9},
	{Name: "gcc_oxili_gfx3d_clk", Value: 0x1ea},
	{Name: "gcc_oxili_ahb_clk", Value: 0x1eb},
	{Name: "gcc_venus0_vcodec0_clk", Value: 0x1f1},
	{Name: "gcc_venus0_axi_clk", Value: 0x1f2},
	{Name: "gcc_venus0_ahb_clk", Value: 0x1f3},
	{Name: "gcc_mdss_ahb_clk", Value: 0x1f6},
	{Name: "gcc_mdss_axi_clk", Value: 0x1f7},
	{Name: "gcc_mdss_pclk0_clk", Value: 0x1f8},
	{Name: "gcc_mdss_mdp_clk", Value: 0x1f9},
	{Name: "gcc_mdss_pclk1_clk", Value: 0x1fa},
	{Name: "gcc_mdss_vsync_clk", Value: 0x1fb},
	{Name: "gcc_mdss_byte0_clk", Value: 0x1fc},
	{Name: "gcc_mdss_esc0_clk", Value: 0x1fd},
	{Name: "wcnss_m_clk", Value: 0x0ec},
}
